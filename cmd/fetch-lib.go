//go:build fetch
// +build fetch

package main

import (
	"flag"
	"log"
	"os"

	"github.com/kawai-network/dynlib"
)

func main() {
	repo := flag.String("repo", "", "GitHub repository (owner/name) to fetch release assets from")
	base := flag.String("base", "", "library base name, without lib prefix or extension")
	dir := flag.String("dir", ".", "directory to download into")
	flag.Parse()

	if *repo == "" || *base == "" {
		log.Fatal("both -repo and -base are required")
	}

	downloader := dynlib.NewDownloader(*repo, *base, *dir)

	path, err := downloader.DownloadLatest()
	if err != nil {
		log.Fatalf("Failed to download library: %v", err)
	}

	log.Printf("Library downloaded to: %s", path)

	// Verify file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Fatalf("Downloaded file not found: %s", path)
	}

	log.Println("Library download successful")
}
