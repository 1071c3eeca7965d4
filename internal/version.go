package internal

// Version is the g2p release version.
const Version = "0.3.0"
