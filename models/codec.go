package models

import jsoniter "github.com/json-iterator/go"

// codec is the JSON codec used inside custom (un)marshalers. It matches the
// one the HTTP client decodes bodies with.
var codec = jsoniter.ConfigCompatibleWithStandardLibrary
