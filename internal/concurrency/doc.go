// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Native thread lifecycle primitives for hioload-thread. A Thread binds one
// unit of work to a dedicated OS thread (a goroutine locked with
// runtime.LockOSThread for its whole life), reports the native thread id,
// and releases the thread by detaching or joining.
//
// Thread ids come from gettid(2) on Linux and GetCurrentThreadId on Windows;
// other platforms get process-unique synthetic ids.
package concurrency
