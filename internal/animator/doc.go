// Package animator drives the typewriter animation: it types each snippet
// into a buffer one character at a time, holds it, erases it row by row and
// moves on to the next snippet.
//
// The Driver never sleeps. Every delay is handed to a Scheduler together
// with the run's cancellation Token, and the host calls Driver.Resume when
// the delay elapses. Pausing cancels the token so late continuations are
// ignored.
package animator
