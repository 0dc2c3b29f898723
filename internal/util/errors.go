package util

import "errors"

var (
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrModuleNotFound   = errors.New("módulo no encontrado")
	ErrLessonNotFound   = errors.New("lección no encontrada")
	ErrWordNotFound     = errors.New("palabra no encontrada")
	ErrNoVideosInLesson = errors.New("no hay videos en esta lección")
	ErrAvatarNotFound   = errors.New("avatar no encontrado")
	ErrEmailRegistered  = errors.New("el correo ya está registrado")
	ErrInvalidMission   = errors.New("misión no válida")
	ErrInvalidGrade     = errors.New("calificación fuera de rango")
	ErrInvalidEmail     = errors.New("el correo no tiene un formato válido")
	ErrWeakPassword     = errors.New("la contraseña debe tener al menos 6 caracteres")
	ErrInvalidPassword  = errors.New("credenciales inválidas")
)
