// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/worldmind/worldmind/ent/checkpoint"
	"github.com/worldmind/worldmind/ent/mission"
	"github.com/worldmind/worldmind/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[5].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	missionFields := schema.Mission{}.Fields()
	_ = missionFields
	// missionDescInteractionMode is the schema descriptor for interaction_mode field.
	missionDescInteractionMode := missionFields[2].Descriptor()
	// mission.DefaultInteractionMode holds the default value on creation for the interaction_mode field.
	mission.DefaultInteractionMode = missionDescInteractionMode.Default.(string)
	// missionDescSkipPerTaskTests is the schema descriptor for skip_per_task_tests field.
	missionDescSkipPerTaskTests := missionFields[8].Descriptor()
	// mission.DefaultSkipPerTaskTests holds the default value on creation for the skip_per_task_tests field.
	mission.DefaultSkipPerTaskTests = missionDescSkipPerTaskTests.Default.(bool)
	// missionDescCreateDeploymentTask is the schema descriptor for create_deployment_task field.
	missionDescCreateDeploymentTask := missionFields[9].Descriptor()
	// mission.DefaultCreateDeploymentTask holds the default value on creation for the create_deployment_task field.
	mission.DefaultCreateDeploymentTask = missionDescCreateDeploymentTask.Default.(bool)
	// missionDescCreatedAt is the schema descriptor for created_at field.
	missionDescCreatedAt := missionFields[11].Descriptor()
	// mission.DefaultCreatedAt holds the default value on creation for the created_at field.
	mission.DefaultCreatedAt = missionDescCreatedAt.Default.(func() time.Time)
}
