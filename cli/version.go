package main

// Version is the bonsai CLI version. Overridden at build time via
// -ldflags "-X main.Version=...".
var Version = "2.0.1"
