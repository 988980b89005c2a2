package scenes

// SceneChanger switches the scene the game loop runs.
type SceneChanger interface {
	ChangeScene(scene interface{})
}
