package main

import (
	"flag"
	"log"
	"runtime"

	"deskscene/engine"
	"deskscene/scene"
)

func init() {
	// the GL context must stay on the thread that created it
	runtime.LockOSThread()
}

func main() {
	var (
		title      = flag.String("title", "desk scene", "window title")
		width      = flag.Int("width", 1000, "window width")
		height     = flag.Int("height", 800, "window height")
		textureDir = flag.String("textures", "textures", "directory holding the scene bitmaps")
	)
	flag.Parse()

	renderer, err := engine.NewRenderer(*title, *width, *height)
	if err != nil {
		log.Fatal(err)
	}
	defer renderer.Dispose()

	mgr := scene.NewManager(renderer.Program(), engine.GLTextureDevice{}, engine.GLMeshDevice{})
	desk := scene.NewDeskScene(mgr, *textureDir)
	desk.Prepare()
	defer desk.Dispose()

	renderer.Run(desk.Render)
}
