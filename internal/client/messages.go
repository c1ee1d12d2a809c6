package client

// Prompt labels.
const (
	LabelMasterPassword  = "Enter Master Password:"
	LabelNewPassword     = "Enter new master password:"
	LabelConfirmPassword = "Confirm new master password:"
	LabelNoteID          = "Id:"
	LabelTitle           = "Title:"
	LabelDescription     = "Description:"
)

// Messages printed to stdout after a command succeeds.
const (
	MsgLoggedIn          = "Logged in."
	MsgLoggedInNoVault   = "Logged in. No vault found yet (use `init` to create one)."
	MsgLoggedOut         = "Logged out and cleared session password."
	MsgVaultInitialized  = "Vault initialized successfully."
	MsgNoteSaved         = "Note saved successfully."
	MsgNoteEdited        = "Note edited successfully."
	MsgNoteDeleted       = "Note deleted successfully."
	MsgPasswordUpdated   = "Password updated successfully."
	MsgDescriptionCopied = "Description copied to clipboard."
)
