package version

// Name for this
const Name string = "favgen"

// Version for this
var Version = "dev"

// Revision for this
var Revision = "HEAD"
