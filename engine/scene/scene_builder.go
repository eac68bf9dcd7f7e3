package scene

// SceneBuilderOption is a functional option for configuring a scene.
type SceneBuilderOption func(*scene)

// WithActive sets the scene's initial active state.
//
// Parameters:
//   - active: true to draw the scene (the default)
//
// Returns:
//   - SceneBuilderOption: the option
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithSprite registers a sprite object during scene construction.
//
// Parameters:
//   - obj: the sprite object to register
//
// Returns:
//   - SceneBuilderOption: the option
func WithSprite(obj *SpriteObject) SceneBuilderOption {
	return func(s *scene) {
		id := s.nextID
		s.nextID++
		s.sprites[id] = obj
		s.order = append(s.order, id)
	}
}

// WithMesh registers a mesh object during scene construction.
//
// Parameters:
//   - obj: the mesh object to register
//
// Returns:
//   - SceneBuilderOption: the option
func WithMesh(obj *MeshObject) SceneBuilderOption {
	return func(s *scene) {
		id := s.nextID
		s.nextID++
		s.meshes[id] = obj
		s.order = append(s.order, id)
	}
}
