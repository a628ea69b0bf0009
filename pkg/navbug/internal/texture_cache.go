package internal

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Two icons per tab, each possibly in two tints, for a handful of tabs.
const defaultMaxCacheSize = 32

// TextureCache keeps rendered textures keyed by what they show, evicting the
// least recently used one when full.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	if texture, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return texture
	}
	return nil
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if old, exists := c.textures[key]; exists {
		if old != texture {
			old.Destroy()
		}
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

// GetOrCreate returns the cached texture for key, creating and caching it on
// a miss.
func (c *TextureCache) GetOrCreate(key string, create func() (*sdl.Texture, error)) (*sdl.Texture, error) {
	if texture := c.Get(key); texture != nil {
		return texture, nil
	}
	texture, err := create()
	if err != nil {
		return nil, err
	}
	c.Set(key, texture)
	return texture, nil
}

func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}

// TextureFromRGBA uploads a premultiplied RGBA image into a static texture.
func TextureFromRGBA(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("texture from empty image")
	}

	// ABGR8888 is R, G, B, A in memory on little-endian machines, which is
	// image.RGBA's byte order.
	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), sdl.TEXTUREACCESS_STATIC,
		int32(bounds.Dx()), int32(bounds.Dy()))
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}

	if err := texture.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
		texture.Destroy()
		return nil, fmt.Errorf("upload texture: %w", err)
	}

	premultiplied := sdl.ComposeCustomBlendMode(
		sdl.BLENDFACTOR_ONE, sdl.BLENDFACTOR_ONE_MINUS_SRC_ALPHA, sdl.BLENDOPERATION_ADD,
		sdl.BLENDFACTOR_ONE, sdl.BLENDFACTOR_ONE_MINUS_SRC_ALPHA, sdl.BLENDOPERATION_ADD,
	)
	if err := texture.SetBlendMode(premultiplied); err != nil {
		texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	}

	return texture, nil
}

// TextTexture renders text with the given font into a texture and returns it
// with its size.
func TextTexture(renderer *sdl.Renderer, font *ttf.Font, text string, c sdl.Color) (*sdl.Texture, int32, int32, error) {
	surface, err := font.RenderUTF8Blended(text, c)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("render text %q: %w", text, err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("text texture %q: %w", text, err)
	}
	return texture, surface.W, surface.H, nil
}
