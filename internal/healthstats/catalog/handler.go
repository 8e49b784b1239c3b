package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/healthstats/internal/healthstats"
	"github.com/2beens/healthstats/internal/telemetry/tracing"
	"github.com/2beens/healthstats/pkg"
)

var MuscleGroup = struct {
	Biceps    string
	Triceps   string
	Back      string
	Legs      string
	Chest     string
	Shoulders string
	Other     string
}{
	Biceps:    "biceps",
	Triceps:   "triceps",
	Back:      "back",
	Legs:      "legs",
	Chest:     "chest",
	Shoulders: "shoulders",
	Other:     "other",
}

var MuscleGroups = []string{
	MuscleGroup.Biceps,
	MuscleGroup.Triceps,
	MuscleGroup.Back,
	MuscleGroup.Legs,
	MuscleGroup.Chest,
	MuscleGroup.Shoulders,
	MuscleGroup.Other,
}

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=catalog_test

type catalogRepo interface {
	GetExerciseTypes(ctx context.Context, params GetExerciseTypesParams) ([]healthstats.ExerciseType, error)
	AddExerciseType(ctx context.Context, exerciseType healthstats.ExerciseType) error
	GetMealPresets(ctx context.Context, slot string) ([]healthstats.MealPreset, error)
	AddMealPreset(ctx context.Context, preset healthstats.MealPreset) (int, error)
	GetSettings(ctx context.Context) (healthstats.Settings, error)
	UpdateSettings(ctx context.Context, settings healthstats.Settings) error
}

type SavedPresetResponse struct {
	ID int `json:"id"`
}

type Handler struct {
	repo catalogRepo
}

func NewHandler(repo catalogRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleGetTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.types.get")
	defer span.End()

	exerciseTypes, err := handler.repo.GetExerciseTypes(ctx, GetExerciseTypesParams{
		MuscleGroup: r.URL.Query().Get("muscleGroup"),
		ExerciseID:  r.URL.Query().Get("id"),
	})
	if err != nil {
		log.Errorf("get exercise types: %s", err)
		http.Error(w, "get exercise types failed", http.StatusInternalServerError)
		return
	}

	exTypesJson, err := json.Marshal(exerciseTypes)
	if err != nil {
		log.Errorf("marshal exercise types: %s", err)
		http.Error(w, "get exercise types failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exTypesJson, http.StatusOK)
}

func (handler *Handler) HandleAddType(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.types.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var exerciseType healthstats.ExerciseType
	if err := json.NewDecoder(r.Body).Decode(&exerciseType); err != nil {
		log.Errorf("new exercise type, unmarshal json params: %s", err)
		http.Error(w, "add exercise type failed", http.StatusBadRequest)
		return
	}

	if exerciseType.ID == "" || exerciseType.MuscleGroup == "" || exerciseType.Name == "" {
		http.Error(w, "error, exercise id, muscle group, and name are required", http.StatusBadRequest)
		return
	}

	exerciseType.MuscleGroup = strings.ToLower(exerciseType.MuscleGroup)
	if slices.Contains(MuscleGroups, exerciseType.MuscleGroup) == false {
		http.Error(w, "error, invalid muscle group", http.StatusBadRequest)
		return
	}

	if err := handler.repo.AddExerciseType(ctx, exerciseType); err != nil {
		if errors.Is(err, ErrCoreLiftReserved) {
			http.Error(w, "error, core lift ids are reserved", http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrExerciseTypeExists) {
			http.Error(w, "error, exercise type already exists", http.StatusConflict)
			return
		}
		log.Errorf("add exercise type: %s", err)
		http.Error(w, "add exercise type failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise type added: %+v", exerciseType)
	w.WriteHeader(http.StatusCreated)
}

func (handler *Handler) HandleGetPresets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.presets.get")
	defer span.End()

	presets, err := handler.repo.GetMealPresets(ctx, r.URL.Query().Get("slot"))
	if err != nil {
		log.Errorf("get meal presets: %s", err)
		http.Error(w, "get meal presets failed", http.StatusInternalServerError)
		return
	}

	presetsJson, err := json.Marshal(presets)
	if err != nil {
		log.Errorf("marshal meal presets: %s", err)
		http.Error(w, "get meal presets failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, presetsJson, http.StatusOK)
}

func (handler *Handler) HandleAddPreset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.presets.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var preset healthstats.MealPreset
	if err := json.NewDecoder(r.Body).Decode(&preset); err != nil {
		log.Errorf("new meal preset, unmarshal json params: %s", err)
		http.Error(w, "add meal preset failed", http.StatusBadRequest)
		return
	}

	if preset.Name == "" {
		http.Error(w, "error, preset name is required", http.StatusBadRequest)
		return
	}
	if slices.Contains(healthstats.MealSlots, preset.Slot) == false {
		http.Error(w, "error, invalid meal slot", http.StatusBadRequest)
		return
	}
	if preset.P < 0 || preset.F < 0 || preset.C < 0 || preset.Kcal < 0 {
		http.Error(w, "error, macros must not be negative", http.StatusBadRequest)
		return
	}

	id, err := handler.repo.AddMealPreset(ctx, preset)
	if err != nil {
		log.Errorf("add meal preset: %s", err)
		http.Error(w, "add meal preset failed", http.StatusInternalServerError)
		return
	}

	savedPresetJson, err := json.Marshal(SavedPresetResponse{ID: id})
	if err != nil {
		log.Errorf("marshal saved meal preset: %s", err)
		http.Error(w, "add meal preset failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new meal preset added: %s [%s]", preset.Name, preset.Slot)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, savedPresetJson, http.StatusCreated)
}

func (handler *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.settings.get")
	defer span.End()

	settings, err := handler.repo.GetSettings(ctx)
	if err != nil {
		log.Errorf("get settings: %s", err)
		http.Error(w, "get settings failed", http.StatusInternalServerError)
		return
	}

	settingsJson, err := json.Marshal(settings)
	if err != nil {
		log.Errorf("marshal settings: %s", err)
		http.Error(w, "get settings failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, settingsJson, http.StatusOK)
}

func (handler *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.settings.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var settings healthstats.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.Errorf("update settings, unmarshal json params: %s", err)
		http.Error(w, "update settings failed", http.StatusBadRequest)
		return
	}

	if settings.StepsGoal < 0 {
		http.Error(w, "error, steps goal must not be negative", http.StatusBadRequest)
		return
	}
	if settings.SleepGoalHours < 0 || settings.SleepGoalHours > 24 {
		http.Error(w, "error, sleep goal out of range", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateSettings(ctx, settings); err != nil {
		log.Errorf("update settings: %s", err)
		http.Error(w, "update settings failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("settings updated: %+v", settings)
	w.WriteHeader(http.StatusNoContent)
}
