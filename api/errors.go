package api

import "errors"

// ErrorNilArgument operation cannot proceed because one of its required
// arguments is nil.
var ErrorNilArgument = errors.New("nilArgument")

// ErrorOutofMemory allocator could not supply memory for the operation.
// There is no automatic retry, callers decide the recovery policy.
var ErrorOutofMemory = errors.New("outofMemory")

// ErrorInvalidIndex index argument falls outside the container limits.
var ErrorInvalidIndex = errors.New("invalidIndex")

// ErrorEmpty operation needs at least one element in the container.
var ErrorEmpty = errors.New("containerEmpty")

// ErrorFull container reached its configured capacity ceiling and the
// operation would grow it further.
var ErrorFull = errors.New("containerFull")

// ErrorIteratorEnd iterator is exhausted, the cursor is already at the
// boundary and cannot move or be dereferenced.
var ErrorIteratorEnd = errors.New("iteratorEnd")

// ErrorNotFound search concluded without a match. This is an expected
// outcome of find/search operations, not a fault.
var ErrorNotFound = errors.New("notFound")

// ErrorAlreadyExists element with the same identity is already present.
var ErrorAlreadyExists = errors.New("alreadyExists")

// ErrorInvalidArgument argument value is outside its legal domain.
var ErrorInvalidArgument = errors.New("invalidArgument")

// ErrorUnknown an unclassified failure, never expected.
var ErrorUnknown = errors.New("unknown")
