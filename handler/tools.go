package handler

import (
	"errors"
	"net/http"
	"pumpsizer/hydraulic"
	"pumpsizer/service"
)

func toCalculationInput(req *calculateRequest) service.CalculationInput {
	system := hydraulic.SystemConfiguration{
		Suction:             toPipeLeg(req.Suction),
		Discharge:           toPipeLeg(req.Discharge),
		DesignFlowRate:      req.FlowRate,
		FlowUnit:            hydraulic.FlowUnit(req.FlowUnit),
		AtmosphericPressure: req.AtmosphericPressure,
		GeodeticElevation:   req.GeodeticElevation,
		RequiredNpsh:        req.RequiredNpsh,
		NpshSafetyMargin:    req.NpshSafetyMargin,
	}
	if req.Fluid != nil {
		system.Fluid = hydraulic.Fluid{
			Name:               req.Fluid.Name,
			Density:            req.Fluid.Density,
			KinematicViscosity: req.Fluid.KinematicViscosity,
			VaporPressure:      req.Fluid.VaporPressure,
		}
	}
	if req.Sweep != nil {
		system.Sweep = &hydraulic.SweepSpec{
			Start:  req.Sweep.Start,
			End:    req.Sweep.End,
			Points: req.Sweep.Points,
		}
	}
	return service.CalculationInput{
		ProjectName: req.ProjectName,
		Temperature: req.Temperature,
		System:      system,
	}
}

func toPipeLeg(p legPayload) hydraulic.PipeLeg {
	leg := hydraulic.PipeLeg{
		Diameter:        p.Diameter,
		Length:          p.Length,
		Material:        p.Material,
		StaticElevation: p.StaticElevation,
		NozzleDiameter:  p.NozzleDiameter,
		GaugePressure:   p.GaugePressure,
	}
	for _, fit := range p.Fittings {
		leg.Fittings = append(leg.Fittings, hydraulic.Fitting{
			Type:    fit.Type,
			K:       fit.K,
			LeOverD: fit.LeOverD,
			Count:   fit.Count,
		})
	}
	return leg
}

// classify maps engine and storage errors onto an HTTP status and errcode.
// Input mistakes come back 400, a non-converging friction iteration 422, and
// anything unexpected stays a plain 500.
func classify(err error) (int, errcode) {
	switch {
	case errors.Is(err, hydraulic.ErrUnknownMaterial),
		errors.Is(err, hydraulic.ErrInvalidGeometry),
		errors.Is(err, hydraulic.ErrInvalidFlow),
		errors.Is(err, hydraulic.ErrInvalidFluid),
		errors.Is(err, hydraulic.ErrInvalidUnit),
		errors.Is(err, hydraulic.ErrInvalidSweep):
		return http.StatusBadRequest, errBadRequest
	case errors.Is(err, hydraulic.ErrConvergence):
		return http.StatusUnprocessableEntity, errNotComputable
	case errors.Is(err, service.ErrCaseNotFound):
		return http.StatusNotFound, errNotFound
	default:
		return http.StatusInternalServerError, errInternalServer
	}
}
