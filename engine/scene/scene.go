// Package scene holds the draw lists a frame is built from: registered sprite
// and mesh objects rendered through the software pipeline in a stable order.
// Meshes draw first under depth testing; sprites composite on top in
// registration order.
package scene

import (
	"sync"

	"github.com/lilith645/Maat-Graphics/engine/camera"
	"github.com/lilith645/Maat-Graphics/engine/light"
	"github.com/lilith645/Maat-Graphics/engine/model"
	"github.com/lilith645/Maat-Graphics/engine/pipeline"
	"github.com/lilith645/Maat-Graphics/engine/shading/geometry"
	"github.com/lilith645/Maat-Graphics/engine/shading/sprite"
	"github.com/lilith645/Maat-Graphics/engine/texture"
)

// SpriteObject is one registered sprite draw: its push-constant block and the
// texture it samples. A nil texture renders the tint colour alone.
type SpriteObject struct {
	Push    sprite.GPUSpritePush
	Texture texture.Texture
}

// MeshObject is one registered mesh draw: geometry, its push-constant block,
// and the texture it samples. A nil texture samples opaque white.
type MeshObject struct {
	Vertices []model.GPUMeshVertex
	Indices  []uint32
	Push     geometry.GPUModelPush
	Texture  texture.Texture
}

// Scene is a registry of sprite and mesh objects drawn together each frame
// against one camera and one light.
type Scene interface {
	// Name returns the scene's name.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// SetName sets the scene's name.
	//
	// Parameters:
	//   - name: the new name
	SetName(name string)

	// Active returns whether this scene is drawn.
	//
	// Returns:
	//   - bool: true if the scene is active
	Active() bool

	// SetActive sets whether this scene is drawn.
	//
	// Parameters:
	//   - active: true to draw the scene
	SetActive(active bool)

	// Camera returns the scene's camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Light returns the scene's light.
	//
	// Returns:
	//   - light.Light: the light
	Light() light.Light

	// AddSprite registers a sprite object and returns its ID. Sprites draw in
	// registration order, after all meshes.
	//
	// Parameters:
	//   - obj: the sprite object (must not be nil)
	//
	// Returns:
	//   - uint64: the assigned object ID
	AddSprite(obj *SpriteObject) uint64

	// AddMesh registers a mesh object and returns its ID.
	//
	// Parameters:
	//   - obj: the mesh object (must not be nil)
	//
	// Returns:
	//   - uint64: the assigned object ID
	AddMesh(obj *MeshObject) uint64

	// Sprite retrieves a registered sprite object by ID, for per-frame
	// mutation of its push block. Returns nil if the ID is unknown.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - *SpriteObject: the sprite object, or nil
	Sprite(id uint64) *SpriteObject

	// Mesh retrieves a registered mesh object by ID. Returns nil if the ID is
	// unknown.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - *MeshObject: the mesh object, or nil
	Mesh(id uint64) *MeshObject

	// Remove removes a registered object by ID. Unknown IDs are ignored.
	//
	// Parameters:
	//   - id: the object ID
	Remove(id uint64)

	// Count returns the number of registered objects.
	//
	// Returns:
	//   - int: the object count
	Count() int

	// Draw renders the scene into the pipeline: meshes first under depth
	// testing, then sprites in registration order. An inactive scene draws
	// nothing. The first draw error aborts the frame.
	//
	// Parameters:
	//   - p: the pipeline to render into
	//
	// Returns:
	//   - error: the first draw error, or nil
	Draw(p pipeline.Pipeline) error
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	camera camera.Camera
	light  light.Light

	sprites map[uint64]*SpriteObject
	meshes  map[uint64]*MeshObject
	order   []uint64 // registration order across both registries
	nextID  uint64
}

var _ Scene = &scene{}

// NewScene creates a new active Scene with the given camera and light. Both
// are required; NewScene panics if either is nil.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - l: the light to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, l light.Light, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if l == nil {
		panic("scene: NewScene requires a non-nil Light")
	}

	s := &scene{
		mu:      &sync.RWMutex{},
		name:    name,
		active:  true,
		camera:  cam,
		light:   l,
		sprites: make(map[uint64]*SpriteObject),
		meshes:  make(map[uint64]*MeshObject),
		nextID:  1,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	return s.camera
}

func (s *scene) Light() light.Light {
	return s.light
}

func (s *scene) AddSprite(obj *SpriteObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.sprites[id] = obj
	s.order = append(s.order, id)
	return id
}

func (s *scene) AddMesh(obj *MeshObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.meshes[id] = obj
	s.order = append(s.order, id)
	return id
}

func (s *scene) Sprite(id uint64) *SpriteObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sprites[id]
}

func (s *scene) Mesh(id uint64) *MeshObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meshes[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sprites, id)
	delete(s.meshes, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sprites) + len(s.meshes)
}

func (s *scene) Draw(p pipeline.Pipeline) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.active {
		return nil
	}

	u := s.camera.SceneUniform(s.light.Position())
	lu := s.light.LightingUniform()

	// Meshes first: they depth-test against each other regardless of order.
	for _, id := range s.order {
		obj, ok := s.meshes[id]
		if !ok {
			continue
		}
		if err := p.DrawMesh(obj.Vertices, obj.Indices, &u, &obj.Push, &lu, obj.Texture); err != nil {
			return err
		}
	}

	// Sprites composite on top in registration order.
	for _, id := range s.order {
		obj, ok := s.sprites[id]
		if !ok {
			continue
		}
		if err := p.DrawSprite(&obj.Push, obj.Texture); err != nil {
			return err
		}
	}
	return nil
}
