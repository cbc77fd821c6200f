// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// services and the terminal UI.
//
// Messages are in Portuguese, the language of the guest list backend and of
// its users. Keeping them in one place ensures consistent wording between the
// error values returned by services and the screens that display them.
package app

const (
	// MsgLoginFailed is shown when the backend rejects a login without
	// supplying its own detail message.
	MsgLoginFailed = "Falha no login"

	// MsgMissingLoginFields is shown when e-mail or password is blank.
	MsgMissingLoginFields = "Informe e-mail e senha."

	// MsgFetchGuestsFailed is shown for any failure to load the guest list.
	MsgFetchGuestsFailed = "Não foi possível carregar os convidados."

	// MsgSaveGuestFailed is the fallback for create and update failures.
	MsgSaveGuestFailed = "Falha ao salvar convidado."

	// MsgDeleteGuestFailed is the fallback for delete failures.
	MsgDeleteGuestFailed = "Falha ao deletar convidado."

	// MsgEmptyGuestName rejects a guest whose name is blank.
	MsgEmptyGuestName = "O nome do convidado não pode estar vazio."

	// MsgUnknownAttendance rejects an attendance value outside the known set.
	MsgUnknownAttendance = "Status de presença inválido."

	// MsgGuestWithoutID is shown when a delete targets a guest that was never
	// stored on the server.
	MsgGuestWithoutID = "Convidado sem identificador."

	// MsgDeleteCancelled is carried by the error returned when the user does
	// not confirm a removal.
	MsgDeleteCancelled = "Remoção cancelada."

	// MsgSessionExpired is shown after the backend answered 401 and the
	// session was discarded.
	MsgSessionExpired = "Sua sessão expirou. Faça login novamente."

	// MsgNotAuthenticated is shown when a guest operation runs without a
	// session.
	MsgNotAuthenticated = "Você precisa fazer login."

	// MsgServerUnavailable is shown when no response reached the client.
	MsgServerUnavailable = "Sem conexão com o servidor. Verifique sua rede."

	// MsgPersistSessionFailed is shown when the credential could not be
	// written to or read from the device.
	MsgPersistSessionFailed = "Não foi possível salvar a sessão neste dispositivo."

	// MsgLogoutIncomplete is shown when the credential was dropped from
	// memory but could not be erased from the device.
	MsgLogoutIncomplete = "Sessão encerrada, mas não foi possível apagar os dados salvos."
)

// MsgConfirmDeleteFormat is the removal confirmation prompt; %s is the guest
// name.
const MsgConfirmDeleteFormat = "Tem certeza que deseja remover \"%s\" da lista?"
