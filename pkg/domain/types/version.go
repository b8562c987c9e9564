package types

// Version is overwritten at build time with -ldflags "-X ...types.Version=<tag>"
var Version = "dev"
