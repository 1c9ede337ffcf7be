// Package preflight provides readiness checks for the filesystem locations
// belabot depends on.
//
// These checks run in two contexts:
//   - The setup wizard verifies the settings directory is writable before
//     asking the operator a single question, so a doomed session fails first.
//   - The CLI "config validate" command uses RunAll to display settings
//     health alongside strict completeness validation.
//
// Checks are read-only. Rewriting the settings document stays the job of the
// config package.
package preflight
