// Package security groups the access-control packages of proofread.
//
// Subpackage auth implements the shared-secret bearer check that guards
// POST /v1/check.
package security
