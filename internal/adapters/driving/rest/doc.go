// Package rest exposes wing generation over HTTP as a JSON API.
//
// The API is a thin shell over the driving ports: generation, the airfoil
// dataset and the model catalog. Exported GLB files are served directly
// from the models directory with the model/gltf-binary content type.
//
// Generation requests are rate limited with a token bucket so a single
// client cannot saturate the pipeline; reads are unlimited.
package rest
