// ABOUTME: Basic example showing body rendering and game thread lookup with the Swish library
// ABOUTME: Demonstrates minimal configuration and common use cases

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"swish-api/swish"
)

func main() {
	// Example 1: Create a client with a light theme
	client, err := swish.NewClient(swish.WithTheme("LIGHT"))
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	// Example 2: Render a body containing a box score table
	fmt.Println("=== Rendering A Body ===")
	raw := "&lt;p&gt;Final score&lt;/p&gt;" +
		"<table><tr><th>Team</th><th>PTS</th></tr><tr><td>SAS</td><td>110</td></tr></table>" +
		"&lt;p&gt;What a game&lt;/p&gt;"
	for i, block := range client.RenderBody(raw, swish.BodySubmission) {
		if block.IsTable() {
			fmt.Printf("%d. table (%d bytes, frame %s)\n", i, len(block.StyledHTML), block.BorderAsset)
			continue
		}
		fmt.Printf("%d. text %q\n", i, block.Text)
	}

	// Example 3: Parse a flair
	fmt.Println("\n=== Parsing A Flair ===")
	f := swish.ParseFlair("Flair {cssClass='Spurs1', text='Pop'}")
	fmt.Printf("text=%s class=%s asset=%s\n", f.Text, f.CSSClass, f.Asset)

	// Example 4: Find tonight's game thread on /r/nba
	fmt.Println("\n=== Finding A Game Thread ===")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	id, err := client.FindGameThread(ctx, "nba", swish.LiveGameThread, "sas", "cle")
	switch {
	case err != nil:
		log.Printf("Error finding game thread: %v\n", err)
	case id == "":
		fmt.Println("No game thread yet")
	default:
		fmt.Printf("Game thread: %s\n", id)
	}
}
