package i18n

import (
	"errors"
	"fmt"
)

// Key names a user-facing message.
type Key int

const (
	MsgRegistered Key = iota
	MsgEmailTaken
	MsgEmailNotFound
	MsgWrongPassword
	MsgServerError
	MsgInvalidBody
	MsgMissingToken
	MsgInvalidToken
	MsgUserNotFound
	MsgUnknownDifficulty
	MsgNoActiveAttempt
	MsgAttemptSubmitted
	MsgIncompleteAttempt
	MsgInvalidAnswer
	MsgNoActiveSession
	MsgSessionInProgress
	MsgSessionNotActive
	MsgUnknownBin
	MsgInvalidTaskID

	keyCount
)

var messages = [keyCount]Text{
	MsgRegistered: {
		AZ: "Uğurla qeydiyyatdan keçdi",
		EN: "Registered successfully",
		RU: "Регистрация прошла успешно",
	},
	MsgEmailTaken: {
		AZ: "Email artıq mövcuddur",
		EN: "Email already exists",
		RU: "Email уже существует",
	},
	MsgEmailNotFound: {
		AZ: "Email tapılmadı",
		EN: "Email not found",
		RU: "Email не найден",
	},
	MsgWrongPassword: {
		AZ: "Şifrə düzgün deyil",
		EN: "Incorrect password",
		RU: "Неверный пароль",
	},
	MsgServerError: {
		AZ: "Server xətası",
		EN: "Server error",
		RU: "Ошибка сервера",
	},
	MsgInvalidBody: {
		AZ: "Sorğu düzgün deyil",
		EN: "Invalid request body",
		RU: "Некорректный запрос",
	},
	MsgMissingToken: {
		AZ: "Avtorizasiya tələb olunur",
		EN: "Missing authorization",
		RU: "Требуется авторизация",
	},
	MsgInvalidToken: {
		AZ: "Token etibarsızdır və ya vaxtı bitib",
		EN: "Invalid or expired token",
		RU: "Недействительный или просроченный токен",
	},
	MsgUserNotFound: {
		AZ: "İstifadəçi tapılmadı",
		EN: "User not found",
		RU: "Пользователь не найден",
	},
	MsgUnknownDifficulty: {
		AZ: "Naməlum çətinlik səviyyəsi",
		EN: "Unknown difficulty",
		RU: "Неизвестный уровень сложности",
	},
	MsgNoActiveAttempt: {
		AZ: "Aktiv test yoxdur",
		EN: "No active quiz attempt",
		RU: "Нет активной попытки теста",
	},
	MsgAttemptSubmitted: {
		AZ: "Test artıq təqdim olunub",
		EN: "Quiz attempt already submitted",
		RU: "Попытка теста уже отправлена",
	},
	MsgIncompleteAttempt: {
		AZ: "Bütün suallara cavab verin",
		EN: "Answer every question before submitting",
		RU: "Ответьте на все вопросы перед отправкой",
	},
	MsgInvalidAnswer: {
		AZ: "Cavab düzgün deyil",
		EN: "Invalid answer",
		RU: "Недопустимый ответ",
	},
	MsgNoActiveSession: {
		AZ: "Aktiv oyun yoxdur",
		EN: "No sorting game in progress",
		RU: "Нет активной игры",
	},
	MsgSessionInProgress: {
		AZ: "Oyun artıq davam edir",
		EN: "A sorting game is already in progress",
		RU: "Игра уже идёт",
	},
	MsgSessionNotActive: {
		AZ: "Oyun bitib",
		EN: "The sorting game is over",
		RU: "Игра окончена",
	},
	MsgUnknownBin: {
		AZ: "Naməlum konteyner",
		EN: "Unknown bin",
		RU: "Неизвестный контейнер",
	},
	MsgInvalidTaskID: {
		AZ: "Tapşırıq nömrəsi düzgün deyil",
		EN: "Invalid task id",
		RU: "Некорректный номер задания",
	},
}

var ErrIncompleteTable = errors.New("incomplete message table")

func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
}

// Validate checks that every key has text in every language.
func Validate() error {
	for k, t := range messages {
		if err := t.Check(fmt.Sprintf("message %d", k)); err != nil {
			return fmt.Errorf("%w: %v", ErrIncompleteTable, err)
		}
	}
	return nil
}

// Message returns the text for k in l.
func Message(l Lang, k Key) string {
	if k < 0 || k >= keyCount {
		return ""
	}
	return messages[k].In(l)
}
