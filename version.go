package typist

// Version is the typist release version.
const Version = "0.3.0"
