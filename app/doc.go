// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app implements the per-platform backend context: the event
queue, the translators from native input records to canonical events,
and the dispatcher for platform lifecycle commands.

A Backend and everything it owns is single threaded. Platform
callbacks and the consuming main loop are expected to run on the same
logical thread of control, or to be serialized before they reach the
backend. The one exception is WaitForWindow, which may block a
goroutine until a lifecycle command wakes it.
*/
package app
