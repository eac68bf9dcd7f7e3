// Package lighting implements the per-fragment Blinn/Phong-style lighting stage:
// a diffuse term with a fixed ambient floor, a damped specular term, and texture
// modulation. All inputs arrive as interpolated varyings; the stage holds no
// state of its own and performs no validation (NaN/Inf propagate silently).
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/lilith645/Maat-Graphics/common"
)

// AmbientFloor is the minimum diffuse brightness. It is baked into the stage
// rather than configurable per draw.
const AmbientFloor float32 = 0.2

// Inputs holds the interpolated varyings one fragment invocation consumes.
type Inputs struct {
	Normal    [3]float32 // raw interpolated surface normal
	ToLight   [3]float32 // fragment-to-light vector
	ToCamera  [3]float32 // fragment-to-camera vector
	TexColour [4]float32 // sampled texture colour (sampling always occurs)
}

// Brightness computes the diffuse brightness term: the dot product of the
// normalized normal and normalized to-light vector, clamped to the ambient
// floor. The result is always in [AmbientFloor, 1] for finite inputs.
//
// Parameters:
//   - normal: the interpolated surface normal
//   - toLight: the fragment-to-light vector
//
// Returns:
//   - float32: the brightness term
func Brightness(normal, toLight [3]float32) float32 {
	unitNormal := common.Normalize3(normal)
	unitLight := common.Normalize3(toLight)
	return math32.Max(common.Dot3(unitNormal, unitLight), AmbientFloor)
}

// SpecularFactor computes the undamped specular factor: the negated unit light
// direction reflected about the raw interpolated normal, dotted with the
// normalized to-camera vector and clamped to zero.
//
// The reflection deliberately uses the varying normal as interpolated, not the
// normalized copy the diffuse term uses. Hosts relying on the shipped shader
// output depend on that asymmetry, so it is part of the contract here.
//
// Parameters:
//   - normal: the raw interpolated surface normal
//   - toLight: the fragment-to-light vector
//   - toCamera: the fragment-to-camera vector
//
// Returns:
//   - float32: the clamped specular factor, 0 when the reflection points away
func SpecularFactor(normal, toLight, toCamera [3]float32) float32 {
	unitLight := common.Normalize3(toLight)
	lightDirection := [3]float32{-unitLight[0], -unitLight[1], -unitLight[2]}
	reflected := common.Reflect3(lightDirection, normal)
	unitCamera := common.Normalize3(toCamera)
	return math32.Max(common.Dot3(reflected, unitCamera), 0)
}

// Shade evaluates one fragment: diffuse and specular terms from the varyings,
// composited with the sampled texture colour as
// vec4(diffuse, 1) * texColour + vec4(specular, 1).
//
// Texture sampling always occurs before this call; the use-texture varying from
// the sprite vertex stage is not consulted here, matching the shipped fragment
// stage.
//
// Parameters:
//   - in: the interpolated fragment inputs
//   - u: the lighting uniform (light colour, damper, reflectivity)
//
// Returns:
//   - [4]float32: the final RGBA pixel colour
func Shade(in Inputs, u *GPULightingUniform) [4]float32 {
	brightness := Brightness(in.Normal, in.ToLight)
	diffuse := [3]float32{
		brightness * u.LightColour[0],
		brightness * u.LightColour[1],
		brightness * u.LightColour[2],
	}

	damped := math32.Pow(SpecularFactor(in.Normal, in.ToLight, in.ToCamera), u.ShineDamper)
	specular := [3]float32{
		damped * u.Reflectivity * u.LightColour[0],
		damped * u.Reflectivity * u.LightColour[1],
		damped * u.Reflectivity * u.LightColour[2],
	}

	return [4]float32{
		diffuse[0]*in.TexColour[0] + specular[0],
		diffuse[1]*in.TexColour[1] + specular[1],
		diffuse[2]*in.TexColour[2] + specular[2],
		1.0*in.TexColour[3] + 1.0,
	}
}
