// Package exec launches the child processes a run depends on: the analysis
// step commands themselves and the throwaway interpreter probe that verifies
// required libraries before anything runs. Children inherit the environment
// assembled by the config layer and, by default, write straight through to
// the terminal.
package exec
