// Package sitefs provides the project filesystem that generation steps read
// the SPA template from and write dist/ and public/ files to.
//
// The store is backed by an afero.Fs rooted at the project directory, so
// tests can run against afero.NewMemMapFs.
package sitefs
