package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/retro-board/internal/cli"
	"github.com/ytget/retro-board/internal/config"
	"github.com/ytget/retro-board/internal/logging"
	"github.com/ytget/retro-board/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.retro-board"
	AppName = "Retro Board"
)

func main() {
	config.LoadDotEnv()

	if err := cli.Execute(version, launchGUI); err != nil {
		logging.Log.WithError(err).Error("retro-board exited")
		os.Exit(1)
	}
}

// launchGUI opens the desktop client and blocks until the window closes
func launchGUI(conf *config.Config) error {
	logging.Log.WithField("version", version).Info("Retro Board starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewBoardTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ui.NewApp(myApp, myWindow, conf).Start(conf.Identity())

	myWindow.ShowAndRun()
	return nil
}
