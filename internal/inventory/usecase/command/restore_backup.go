package command

import (
	"context"
	"fmt"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
)

// RestoreBackupCommand applies a previously exported snapshot.
type RestoreBackupCommand struct {
	Data []byte
}

// RestoreBackupHandler handles snapshot restores.
type RestoreBackupHandler struct {
	archiver domain.Archiver
}

// NewRestoreBackupHandler creates a new restore backup handler.
func NewRestoreBackupHandler(archiver domain.Archiver) *RestoreBackupHandler {
	return &RestoreBackupHandler{archiver: archiver}
}

// Handle executes the restore. A malformed snapshot fails without touching
// the persisted collections.
func (h *RestoreBackupHandler) Handle(ctx context.Context, cmd RestoreBackupCommand) error {
	if len(cmd.Data) == 0 {
		return fmt.Errorf("backup data is empty")
	}
	return h.archiver.Restore(ctx, cmd.Data)
}
