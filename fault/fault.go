// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAllocationFailed       = ProcessError("node allocation failed")
	ErrAlreadyExists          = ExistsError("record already exists")
	ErrAlreadyInitialised     = ProcessError("already initialised")
	ErrInvalidCapacity        = InvalidError("capacity is invalid")
	ErrInvalidCloneFunction   = InvalidError("clone function is missing")
	ErrInvalidCompareFunction = InvalidError("compare function is missing")
	ErrInvalidDestroyFunction = InvalidError("destroy function is missing")
	ErrInvalidKey             = InvalidError("key is missing")
	ErrInvalidList            = InvalidError("list is missing or destroyed")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidMatchFunction   = InvalidError("match function is missing")
	ErrInvalidVisitorFunction = InvalidError("visitor function is missing")
	ErrNotFound               = NotFoundError("record not found")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
