// Package config provides the configuration of a facescan run: the two
// service credentials, the fixed input and output paths, and the model
// selectors sent with every detection call.
//
// Credentials are read from the process environment, which may first be
// seeded from a .env file. Nothing else reads the environment; the loaded
// values are passed explicitly to the detection client.
package config
