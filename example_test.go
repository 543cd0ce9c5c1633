package airmix_test

import (
	"context"
	"fmt"
	"log"

	"github.com/ik5/airmix"
	"github.com/ik5/airmix/playlist"
)

// An empty playlist still renders a short silent master, so the output
// chain never has to special-case "nothing to play".
func ExampleEngine_Render() {
	eng := airmix.New(airmix.DefaultRegistry(), airmix.Options{})

	master, err := eng.Render(context.Background(), nil, playlist.NewLibrary())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d channels, %d frames\n", master.Channels(), master.Frames())
	// Output: 2 channels, 44100 frames
}
