package entities

// TextureHandle is an opaque host-owned texture. The engine never inspects it.
type TextureHandle any

// Releaser is implemented by handles that hold resources the host must free
type Releaser interface {
	Release() error
}

// TextureKey names a texture slot
type TextureKey string

// Texture slots used by level instantiation
const (
	TextureFloor        TextureKey = "floor"
	TextureWall         TextureKey = "wall"
	TextureOre          TextureKey = "ore"
	TextureChest        TextureKey = "chest"
	TextureChestOpen    TextureKey = "chest_open"
	TextureCoin         TextureKey = "coin"
	TextureDoorClosed   TextureKey = "door_closed"
	TextureDoorOpen     TextureKey = "door_open"
	TextureCrate        TextureKey = "crate"
	TextureCrateStacked TextureKey = "crate_stacked"
	TextureEnemy        TextureKey = "enemy"
)

// TextureSet maps slots to host handles. Missing slots yield nil handles.
type TextureSet map[TextureKey]TextureHandle

// Get returns the handle for key, or nil
func (s TextureSet) Get(key TextureKey) TextureHandle {
	if s == nil {
		return nil
	}
	return s[key]
}
