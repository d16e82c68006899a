package main

import (
	"fmt"

	tinyjson "github.com/CosmWasm/tinyjson"

	"offset_registry/contract/registry"
	"offset_registry/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Project State Persistence
////////////////////////////////////////////////////////////////////////////////

func saveProject(prj *registry.Project) {
	b, err := tinyjson.Marshal(prj)
	if err != nil {
		sdk.Abort(fmt.Sprintf("failed to marshal project %d: %v", prj.ID, err))
	}
	sdk.StateSetObject(projectKey(prj.ID), string(b))
}

func loadProject(id uint64) (*registry.Project, error) {
	ptr := sdk.StateGetObject(projectKey(id))
	if ptr == nil {
		return nil, fmt.Errorf("project %d not found", id)
	}
	var prj registry.Project
	if err := tinyjson.Unmarshal([]byte(*ptr), &prj); err != nil {
		return nil, fmt.Errorf("failed unmarshal project %d: %v", id, err)
	}
	return &prj, nil
}

// mustLoadProject reverts with the not_found symbol when the id is unknown.
func mustLoadProject(id uint64) *registry.Project {
	prj, err := loadProject(id)
	if err != nil {
		revertNotFound(err.Error())
	}
	return prj
}

// listAllProjects walks the dense id space 1..count.
func listAllProjects() registry.ProjectList {
	count := getCount(ProjectsCount)
	out := make(registry.ProjectList, 0, count)
	for id := uint64(1); id <= count; id++ {
		if prj, err := loadProject(id); err == nil {
			out = append(out, *prj)
		}
	}
	return out
}
