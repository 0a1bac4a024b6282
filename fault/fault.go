// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAllocationFailure     = ProcessError("node allocation failed")
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBlackHeightMismatch   = InvalidError("black height mismatch")
	ErrInvalidConfiguration  = InvalidError("configuration must return a table")
	ErrInvalidCount          = InvalidError("count is invalid")
	ErrInvalidKey            = InvalidError("key is invalid")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrOrderViolation        = InvalidError("key order violation")
	ErrParentLink            = InvalidError("parent link is inconsistent")
	ErrRedViolation          = InvalidError("red node has a red child")
	ErrRequiredConfigFile    = InvalidError("config file is required")
	ErrRootNotBlack          = InvalidError("root node is not black")
	ErrTreeInvariantViolated = ProcessError("tree invariant violated")
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
