package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zhaodedao/appicon"
	"github.com/zhaodedao/appicon/utils"
)

const HelpBanner = `
┌─┐┌─┐┌─┐┬┌─┐┌─┐┌┐┌
├─┤├─┘├─┘││  │ ││││
┴ ┴┴  ┴  ┴└─┘└─┘┘└┘

App icon generator for the asset catalog.
    Version: %s

Usage: appicon

Run it from the repository root: the icon is written to
./找得到/Assets.xcassets/AppIcon.appiconset/icon-1024@1x.png
relative to the working directory.

`

// Version indicates the current build version.
var Version string

var (
	// colored is true when the status messages go to a terminal.
	colored bool
	// spinner used to instantiate and call the progress indicator.
	spinner *utils.Spinner
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	colored = utils.IsTerminal(os.Stderr)
	if colored {
		spinnerText := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ APPICON", utils.StatusMessage),
			utils.DecorateText("is drawing the icon...", utils.DefaultMessage))
		spinner = utils.NewSpinner(os.Stderr, spinnerText, time.Millisecond*200, true)

		// Capture CTRL-C signal and restore the cursor visibility back.
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-signalChan
			spinner.RestoreCursor()
			os.Exit(1)
		}()
	}

	baseDir, err := os.Getwd()
	if err != nil {
		log.Fatalf(decorate("Unable to resolve the working directory: %v", utils.ErrorMessage), err)
	}

	now := time.Now()
	if _, err := run(baseDir, os.Stdout, spinner); err != nil {
		log.Fatalf(decorate("Error generating the icon: %v", utils.ErrorMessage), err)
	}
	if colored {
		fmt.Fprintf(os.Stderr, "Execution time: %s\n", decorate(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	}
}

// run renders the icon, writes it into the asset catalog rooted at baseDir
// and reports the saved path on w. The spinner is optional.
func run(baseDir string, w io.Writer, s *utils.Spinner) (string, error) {
	target := appicon.NewOutputTarget(baseDir)

	if s != nil {
		s.StopMsg = fmt.Sprintf("%s %s\n",
			utils.DecorateText("⚡ APPICON", utils.StatusMessage),
			utils.DecorateText("is drawing the icon... ✔", utils.DefaultMessage))
		s.Start()
	}
	img := appicon.NewRenderer().Render()
	if s != nil {
		s.Stop()
	}

	if err := target.Write(img); err != nil {
		return "", err
	}

	fmt.Fprintf(w, "Icon saved to: %s\n", target.Path())
	return target.Path(), nil
}

// decorate colors the message only when the output is a terminal.
func decorate(s string, msgType utils.MessageType) string {
	if !colored {
		return s
	}
	return utils.DecorateText(s, msgType)
}
