// Package errors provides sentinel errors and custom error types for the gitgud application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrSelfReference indicates a commit was added as its own parent or child
	ErrSelfReference = errors.New("commit cannot reference itself")

	// ErrCommitNotFound indicates that a commit ID does not exist in the tree
	ErrCommitNotFound = errors.New("commit not found")

	// ErrBranchNotFound indicates that a branch ID does not exist in the tree
	ErrBranchNotFound = errors.New("branch not found")

	// ErrHeadNotLeaf indicates that the checked-out commit already has children
	ErrHeadNotLeaf = errors.New("head already has a child")

	// ErrMergeUndo indicates an undo on a merge commit without an explicit parent choice
	ErrMergeUndo = errors.New("cannot undo a merge commit without choosing a parent")
)

// SelfReferenceError represents an attempt to link a commit to itself
type SelfReferenceError struct {
	CommitID int
}

func (e *SelfReferenceError) Error() string {
	return fmt.Sprintf("commit %d cannot be its own parent or child", e.CommitID)
}

// Is returns true if the target error is ErrSelfReference
func (e *SelfReferenceError) Is(target error) bool {
	return target == ErrSelfReference
}

// NewSelfReferenceError creates a new SelfReferenceError
func NewSelfReferenceError(commitID int) *SelfReferenceError {
	return &SelfReferenceError{CommitID: commitID}
}

// CommitNotFoundError represents a lookup of a commit ID that does not exist
type CommitNotFoundError struct {
	CommitID int
}

func (e *CommitNotFoundError) Error() string {
	return fmt.Sprintf("commit %d does not exist", e.CommitID)
}

// Is returns true if the target error is ErrCommitNotFound
func (e *CommitNotFoundError) Is(target error) bool {
	return target == ErrCommitNotFound
}

// NewCommitNotFoundError creates a new CommitNotFoundError
func NewCommitNotFoundError(commitID int) *CommitNotFoundError {
	return &CommitNotFoundError{CommitID: commitID}
}

// BranchNotFoundError represents a lookup of a branch ID that does not exist
// or has no commits yet
type BranchNotFoundError struct {
	BranchID int
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %d does not exist", e.BranchID)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchID int) *BranchNotFoundError {
	return &BranchNotFoundError{BranchID: branchID}
}

// HeadNotLeafError represents an attempt to commit on top of a commit that
// already has children. Forking must go through branch/merge instead.
type HeadNotLeafError struct {
	CommitID    int
	NumChildren int
}

func (e *HeadNotLeafError) Error() string {
	return fmt.Sprintf("commit %d already has %d child(ren); cannot commit on top of it", e.CommitID, e.NumChildren)
}

// Is returns true if the target error is ErrHeadNotLeaf
func (e *HeadNotLeafError) Is(target error) bool {
	return target == ErrHeadNotLeaf
}

// NewHeadNotLeafError creates a new HeadNotLeafError
func NewHeadNotLeafError(commitID, numChildren int) *HeadNotLeafError {
	return &HeadNotLeafError{CommitID: commitID, NumChildren: numChildren}
}

// MergeUndoError represents an undo of a merge commit, which needs the caller
// to pick which parent becomes the new head
type MergeUndoError struct {
	CommitID  int
	ParentIDs []int
}

func (e *MergeUndoError) Error() string {
	return fmt.Sprintf("commit %d is a merge commit with parents %v; use UndoMerge with an explicit parent", e.CommitID, e.ParentIDs)
}

// Is returns true if the target error is ErrMergeUndo
func (e *MergeUndoError) Is(target error) bool {
	return target == ErrMergeUndo
}

// NewMergeUndoError creates a new MergeUndoError
func NewMergeUndoError(commitID int, parentIDs []int) *MergeUndoError {
	return &MergeUndoError{CommitID: commitID, ParentIDs: parentIDs}
}
