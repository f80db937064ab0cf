package config

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-trace/geom"
	"github.com/Carmen-Shannon/oxy-trace/loader"
	"github.com/Carmen-Shannon/oxy-trace/primitive"
	"github.com/Carmen-Shannon/oxy-trace/scene"
)

// BuildScene turns a declarative SceneConfig into a built scene.Scene,
// loading any OBJ assets it references through ldr (so objects that share
// an obj_path share one parsed template, per loader's caching contract).
func BuildScene(sc SceneConfig, ldr loader.Loader) (scene.Scene, error) {
	builder := scene.NewSceneBuilder()

	for i, oc := range sc.Objects {
		tmpl, err := objectTemplate(oc, ldr)
		if err != nil {
			return nil, fmt.Errorf("config: scene object %d: %w", i, err)
		}

		obj := scene.NewSceneObject(tmpl,
			scene.WithScale(scaleOrIdentity(oc.Scale)),
			scene.WithRotationDeg(vec3(oc.RotationDeg)),
			scene.WithTranslation(vec3(oc.Translation)),
		)
		builder.AddObject(obj)
	}

	for _, lc := range sc.Lights {
		light := scene.NewLight(
			scene.WithPosition(point3(lc.Position)),
			scene.WithIntensity(lc.Intensity),
		)
		builder.AddLight(light)
	}

	return builder.Build(), nil
}

func objectTemplate(oc ObjectConfig, ldr loader.Loader) (scene.Template, error) {
	if oc.Sphere != nil {
		return scene.SphereTemplate{Sphere: primitive.Sphere{
			Center: point3(oc.Sphere.Center),
			Radius: oc.Sphere.Radius,
		}}, nil
	}
	if oc.ObjPath == "" {
		return nil, fmt.Errorf("object has neither obj_path nor an inline sphere")
	}
	return ldr.Load(oc.ObjPath)
}

func vec3(a [3]float32) geom.Vector3 {
	return geom.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

// scaleOrIdentity treats an all-zero scale - the TOML zero value for a field
// an object config omits entirely - as "unset" and defaults it to (1,1,1),
// matching NewSceneObject's own identity-scale default. A genuine all-axis
// zero scale isn't a meaningful object to render, so this isn't lossy in
// practice.
func scaleOrIdentity(a [3]float32) geom.Vector3 {
	if a == ([3]float32{}) {
		return geom.Vector3{X: 1, Y: 1, Z: 1}
	}
	return vec3(a)
}

func point3(a [3]float32) geom.Point3 {
	return geom.Point3{X: a[0], Y: a[1], Z: a[2]}
}
