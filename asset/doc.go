// Package asset loads the textures and meshes used by the example host.
//
// Image files are sniffed by content rather than extension and decoded into
// RGBA pixels. Decoded textures are cached by path, so repeated loads of the
// same fixture across examples share one Texture.
//
//	loader, err := asset.NewLoader(asset.WithRoot("testdata"))
//	if err != nil {
//	    return err
//	}
//	noise, err := loader.LoadTexture("blue_noise.png")
package asset
