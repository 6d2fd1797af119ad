package batch

import "fmt"

// TooManyFilesError rejects a batch over the file cap.
type TooManyFilesError struct {
	Count int
	Max   int
}

func (e *TooManyFilesError) Error() string {
	return fmt.Sprintf("A batch may contain at most %d files (got %d).", e.Max, e.Count)
}

// EmptyBatchError rejects a batch with no files.
type EmptyBatchError struct{}

func (e *EmptyBatchError) Error() string {
	return "No files provided for batch analysis."
}
