package app_info

// NAME name of this application
var NAME = "discover"

// VERSION current version of this application
var VERSION = "v1.0.0"
