package invoke

// Version of the invoke package.
const Version = "1.0.0"
