package glow

// ObjectVisitor receives registered objects by concrete kind. Embed BaseObjectVisitor
// to implement only the methods you need.
type ObjectVisitor interface {
	VisitBuffer(b Buffer)
	VisitFrameBufferObject(fbo FrameBufferObject)
	VisitProgram(p Program)
	VisitRenderBufferObject(rbo RenderBufferObject)
	VisitShader(s Shader)
	VisitTexture(t Texture)
	VisitVertexArrayObject(vao VertexArrayObject)
}

// BaseObjectVisitor implements ObjectVisitor with no-op methods.
type BaseObjectVisitor struct{}

var _ ObjectVisitor = BaseObjectVisitor{}

func (BaseObjectVisitor) VisitBuffer(Buffer)                         {}
func (BaseObjectVisitor) VisitFrameBufferObject(FrameBufferObject)   {}
func (BaseObjectVisitor) VisitProgram(Program)                       {}
func (BaseObjectVisitor) VisitRenderBufferObject(RenderBufferObject) {}
func (BaseObjectVisitor) VisitShader(Shader)                         {}
func (BaseObjectVisitor) VisitTexture(Texture)                       {}
func (BaseObjectVisitor) VisitVertexArrayObject(VertexArrayObject)   {}
