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
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceFactor        = ProcessError("balance factor does not match sub-tree heights")
	ErrCountMismatch        = ProcessError("node count does not match tree")
	ErrInvalidConfiguration = InvalidError("configuration did not return a table")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidHexKey        = InvalidError("invalid hex key")
	ErrInvalidKeyEncoding   = InvalidError("invalid key encoding")
	ErrInvalidKeySource     = InvalidError("invalid key source")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidWidth         = InvalidError("invalid key width")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrKeyOrder             = ProcessError("keys are out of order")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrParentLinkMismatch   = ProcessError("parent link does not match")
	ErrUnbalanced           = ProcessError("tree is unbalanced")
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
