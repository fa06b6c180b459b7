/*
Package appicon draws the application icon of the 找得到 app: a vertical blue
gradient, a white magnifying glass and a soft Gaussian finish. The result is
saved as the 1024x1024 entry of the Xcode asset catalog:

	找得到/Assets.xcassets/AppIcon.appiconset/icon-1024@1x.png

The icon is regenerated by running the command from the repository root:

	$ go run ./cmd/appicon

The package can also be used directly:

	package main

	import (
		"log"

		"github.com/zhaodedao/appicon"
	)

	func main() {
		img := appicon.NewRenderer().Render()

		if err := appicon.NewOutputTarget(".").Write(img); err != nil {
			log.Fatalf("Error writing the icon: %v", err)
		}
	}
*/
package appicon
