package light

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithPosition is an option builder that sets the homogeneous world-space
// position of the light.
//
// Parameters:
//   - x: the x position component
//   - y: the y position component
//   - z: the z position component
//   - w: the homogeneous component (1 for a point light, 0 for directional)
//
// Returns:
//   - LightBuilderOption: a function that applies the position option to a lightImpl
func WithPosition(x, y, z, w float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = [4]float32{x, y, z, w}
	}
}

// WithColour is an option builder that sets the RGB colour of the light.
//
// Parameters:
//   - r: the red colour component
//   - g: the green colour component
//   - b: the blue colour component
//
// Returns:
//   - LightBuilderOption: a function that applies the colour option to a lightImpl
func WithColour(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.colour = [3]float32{r, g, b}
	}
}

// WithSpecular is an option builder that sets the surface specular pair.
//
// Parameters:
//   - shineDamper: the specular exponent
//   - reflectivity: the specular intensity multiplier
//
// Returns:
//   - LightBuilderOption: a function that applies the specular option to a lightImpl
func WithSpecular(shineDamper, reflectivity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.shineDamper = shineDamper
		l.reflectivity = reflectivity
	}
}
