package model

// Version is the current release, stamped by the release build.
var Version = "0.3.1"
