package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/simstore/build-advisor/internal/advisor"
	"github.com/simstore/build-advisor/internal/models"
)

// Build advisor handlers

type buildResponse struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Task       string              `json:"task"`
	Budget     float64             `json:"budget"`
	Build      []models.BuildEntry `json:"build"`
	TotalPrice float64             `json:"totalPrice"`
}

type buildErrorResponse struct {
	Success bool    `json:"success"`
	Error   string  `json:"error"`
	Budget  float64 `json:"budget,omitempty"`
}

func (s *Server) handleAIBuild(w http.ResponseWriter, r *http.Request) {
	task := r.URL.Query().Get("task")
	budget, err := strconv.ParseFloat(r.URL.Query().Get("budget"), 64)
	if task == "" || err != nil {
		respondError(w, http.StatusBadRequest, "Missing or invalid task/budget")
		return
	}

	build, err := advisor.SelectBuild(s.catalog.Parts(), task, budget)
	if err != nil {
		var noComponents *advisor.NoComponentsError
		switch {
		case errors.As(err, &noComponents):
			respondJSON(w, http.StatusBadRequest, buildErrorResponse{
				Error:  "No components found within the specified budget",
				Budget: noComponents.Budget,
			})
		case errors.Is(err, advisor.ErrInvalidInput):
			respondError(w, http.StatusBadRequest, "Missing or invalid task/budget")
		default:
			slog.Error("failed to generate build", "error", err, "task", task, "budget", budget)
			respondJSON(w, http.StatusInternalServerError, buildErrorResponse{
				Error: "Failed to generate build",
			})
		}
		return
	}

	respondJSON(w, http.StatusOK, buildResponse{
		Success:    true,
		Message:    "Build generated successfully",
		Task:       build.Task,
		Budget:     build.Budget,
		Build:      build.Entries,
		TotalPrice: build.TotalPrice,
	})
}

type bottleneckRequest struct {
	SelectedCPU     *models.PartSelection    `json:"selectedCPU"`
	SelectedGPU     *models.PartSelection    `json:"selectedGPU"`
	SelectedMonitor *models.MonitorSelection `json:"selectedMonitor"`
	TaskType        string                   `json:"taskType"`
}

func (s *Server) handleBottleneck(w http.ResponseWriter, r *http.Request) {
	var req bottleneckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := advisor.EstimateBottleneck(req.SelectedCPU, req.SelectedGPU, req.SelectedMonitor, req.TaskType)
	if err != nil {
		if errors.Is(err, advisor.ErrSelectionRequired) {
			respondError(w, http.StatusBadRequest, "CPU and GPU must be selected")
			return
		}
		slog.Error("failed to calculate bottleneck", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to calculate bottleneck")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleListParts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]models.Part{
		"cpuList":     s.catalog.PartsByType(advisor.TypeCPU),
		"gpuList":     s.catalog.PartsByType(advisor.TypeGPU),
		"monitorList": s.catalog.PartsByType(advisor.TypeMonitor),
	})
}

// sampleComponent is a fixed showcase entry for the components endpoint
type sampleComponent struct {
	Type  string  `json:"type"`
	Model string  `json:"model"`
	Price float64 `json:"price"`
}

var sampleComponents = map[string][]sampleComponent{
	advisor.TaskGeneral: {
		{Type: "CPU", Model: "Intel Core i5-12400", Price: 200},
		{Type: "GPU", Model: "NVIDIA GeForce GTX 1660", Price: 250},
		{Type: "RAM", Model: "Corsair Vengeance 16GB", Price: 80},
		{Type: "Storage", Model: "Samsung 970 EVO 500GB", Price: 70},
		{Type: "Motherboard", Model: "MSI B660M-A", Price: 150},
		{Type: "PSU", Model: "EVGA 600W Bronze", Price: 60},
		{Type: "Case", Model: "NZXT H510", Price: 90},
	},
	advisor.TaskCPU: {
		{Type: "CPU", Model: "AMD Ryzen 7 5800X", Price: 350},
		{Type: "GPU", Model: "NVIDIA GeForce RTX 3060", Price: 350},
		{Type: "RAM", Model: "G.Skill Ripjaws 32GB", Price: 120},
		{Type: "Storage", Model: "WD Black 1TB", Price: 100},
		{Type: "Motherboard", Model: "ASUS ROG B550-F", Price: 180},
		{Type: "PSU", Model: "Corsair RM750", Price: 100},
		{Type: "Case", Model: "Lian Li Lancool II", Price: 120},
	},
	advisor.TaskGPU: {
		{Type: "CPU", Model: "Intel Core i7-12700K", Price: 400},
		{Type: "GPU", Model: "NVIDIA GeForce RTX 3070", Price: 500},
		{Type: "RAM", Model: "Corsair Dominator 32GB", Price: 150},
		{Type: "Storage", Model: "Samsung 980 Pro 1TB", Price: 130},
		{Type: "Motherboard", Model: "MSI MPG Z690", Price: 250},
		{Type: "PSU", Model: "EVGA 850W Gold", Price: 130},
		{Type: "Case", Model: "Phanteks Enthoo 719", Price: 200},
	},
}

func (s *Server) handleSampleComponents(w http.ResponseWriter, r *http.Request) {
	task := chi.URLParam(r, "task")

	components, ok := sampleComponents[task]
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid task type")
		return
	}

	respondJSON(w, http.StatusOK, components)
}
