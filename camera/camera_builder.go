package camera

// CameraBuilderOption configures a Camera under construction.
type CameraBuilderOption func(*cameraImpl)

// WithAspectFromFrame overrides the camera's aspect ratio with the one
// implied by a frame's pixel dimensions, rather than requiring the caller
// to compute width/height by hand.
//
// Parameters:
//   - frameWidth, frameHeight: frame dimensions in pixels
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspectFromFrame(frameWidth, frameHeight int) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = float32(frameWidth) / float32(frameHeight)
	}
}
