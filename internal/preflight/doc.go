// Package preflight provides readiness checks for the external binaries and
// filesystem paths the curation commands depend on.
//
// The CLI "audiotools status" command runs RunAll and renders the results;
// batch commands run the checks relevant to them before touching any output
// so a misconfigured tool fails before hours of model inference.
package preflight
