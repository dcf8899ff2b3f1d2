// Command termcanvas-gui opens a fyne window hosting a termcanvas terminal
// attached to a real shell over a PTY. The File menu exports screenshots of
// the rendered frame.
package main

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"os/exec"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/creack/pty"
	"github.com/sqweek/dialog"

	"github.com/phroun/termcanvas"
	"github.com/phroun/termcanvas/fyneterm"
)

const (
	initialCols = 80
	initialRows = 24
)

func main() {
	a := app.New()
	w := a.NewWindow("termcanvas")

	term, err := fyneterm.New(initialCols, initialRows, 2000, termcanvas.Options{
		CursorBlink: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "termcanvas-gui: %v\n", err)
		os.Exit(1)
	}

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.Command(shell)
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Cols: initialCols,
		Rows: initialRows,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "termcanvas-gui: starting %s: %v\n", shell, err)
		os.Exit(1)
	}

	term.SetInputCallback(func(data []byte) {
		ptmx.Write(data)
	})
	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				term.Feed(buf[:n])
			}
			if err != nil {
				if err != io.EOF {
					fmt.Fprintf(os.Stderr, "termcanvas-gui: pty read: %v\n", err)
				}
				return
			}
		}
	}()

	w.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("File",
		fyne.NewMenuItem("Save Screenshot…", func() {
			saveScreenshot(term)
		}),
	)))

	w.SetContent(term)
	w.Resize(fyne.NewSize(820, 500))
	w.Canvas().Focus(term)
	w.ShowAndRun()

	term.Close()
	ptmx.Close()
	cmd.Process.Kill()
	cmd.Wait()
}

func saveScreenshot(term *fyneterm.Terminal) {
	path, err := dialog.File().
		Filter("PNG image", "png").
		Title("Save screenshot").
		Save()
	if err != nil {
		return // cancelled
	}
	f, err := os.Create(path)
	if err != nil {
		dialog.Message("Could not save screenshot: %v", err).Error()
		return
	}
	defer f.Close()
	if err := png.Encode(f, term.Screenshot()); err != nil {
		dialog.Message("Could not encode screenshot: %v", err).Error()
	}
}
