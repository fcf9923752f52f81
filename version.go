package hanoi

// Version is the release of the hanoi module and CLI.
const Version = "0.1.0"
