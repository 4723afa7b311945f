package main

import (
	"flag"
	"log"
	"runtime"
	"time"

	"voxelview/internal/config"
	"voxelview/internal/game"
	"voxelview/internal/graphics"
	"voxelview/internal/input"
	"voxelview/internal/player"
	"voxelview/internal/sky"
	"voxelview/internal/worldgen"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML settings file (default $"+config.EnvConfigPath+")")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		closer.Fatalln(err)
	}
	config.SetFPSLimit(settings.Display.FPSLimit)

	cycle, err := sky.FromSettings(settings.Sky, time.Now())
	if err != nil {
		closer.Fatalln(err)
	}

	// The world is built before any GL state exists; the scene uploads on first draw.
	scene := graphics.NewBlockScene()
	grid, _ := worldgen.Build(settings.World, scene)

	eye, target := worldgen.SpawnView(grid, settings.World.BlockSize)
	controller := player.New(eye)
	controller.Step = settings.Player.MoveStep
	controller.Sensitivity = settings.Player.MouseSensitivity
	controller.LookAt(target)

	if err := glfw.Init(); err != nil {
		closer.Fatalln("glfw init:", err)
	}
	window, err := game.SetupWindow(settings.Display)
	if err != nil {
		glfw.Terminate()
		closer.Fatalln("window:", err)
	}
	width, height := window.GetFramebufferSize()
	r, err := graphics.NewRenderer(scene, width, height)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		closer.Fatalln("renderer:", err)
	}
	r.LoadTexture(settings.Display.Texture)

	app := game.NewApp(window, input.NewInputManager(), settings, grid, controller, cycle, r)
	game.SetupInputHandlers(app)

	// GL and GLFW teardown must happen on this thread, so the closer hook
	// only asks the loop to stop and waits for it.
	exitC := make(chan struct{}, 2)
	doneC := make(chan struct{}, 2)
	defer closer.Close()
	closer.Bind(func() {
		exitC <- struct{}{}
		<-doneC
		log.Printf("voxelview: %d frames", app.Frames())
	})

	app.Run(exitC)

	r.Dispose()
	window.Destroy()
	glfw.Terminate()
	doneC <- struct{}{}
}
