package ports

import (
	"github.com/baditaflorin/go_address_splitter/internal/core/domain"
)

// LineSplitter defines the interface for splitting an address into three lines.
type LineSplitter interface {
	Split(address string) domain.Result
}
