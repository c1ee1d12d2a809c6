package service

import (
	"github.com/MKhiriev/enc-notes/internal/crypto"
	"github.com/MKhiriev/enc-notes/internal/logger"
	"github.com/MKhiriev/enc-notes/internal/store"
	"github.com/MKhiriev/enc-notes/internal/utils"
)

type Services struct {
	VaultService VaultService
	NoteService  NoteService
}

func NewServices(storages *store.ClientStorages, logger *logger.Logger) *Services {
	vaultSvc := NewVaultService(storages.VaultStorage, crypto.NewKeyChainService(), logger)

	return &Services{
		VaultService: vaultSvc,
		NoteService:  NewNoteService(vaultSvc, utils.NewUUIDGenerator(), logger),
	}
}
