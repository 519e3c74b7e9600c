// Package main provides the entry point for the facescan CLI.
//
// facescan sends people.jpg from the current directory to an Azure AI Face
// resource, prints the head pose, blur and mask attributes of every detected
// face and saves a copy of the image with the faces outlined to
// faces_detected.jpg.
//
// Usage:
//
//	facescan            # analyse people.jpg
//	facescan init       # write a .env template for the credentials
//	facescan version
//
// Credentials are read from AI_SERVICE_KEY and AI_SERVICE_ENDPOINT, which may
// be provided in a .env file.
package main

// main is the entry point for facescan.
func main() {
	Execute()
}
