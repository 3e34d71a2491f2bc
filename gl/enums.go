package gl

// Enum is a native OpenGL enumerant or bitfield value.
type Enum uint32

const (
	NO_ERROR                      = Enum(0)
	INVALID_ENUM                  = Enum(0x0500)
	INVALID_VALUE                 = Enum(0x0501)
	INVALID_OPERATION             = Enum(0x0502)
	STACK_OVERFLOW                = Enum(0x0503)
	STACK_UNDERFLOW               = Enum(0x0504)
	OUT_OF_MEMORY                 = Enum(0x0505)
	INVALID_FRAMEBUFFER_OPERATION = Enum(0x0506)

	FALSE = 0
	TRUE  = 1
	NONE  = Enum(0)

	VENDOR                   = Enum(0x1F00)
	RENDERER                 = Enum(0x1F01)
	VERSION                  = Enum(0x1F02)
	EXTENSIONS               = Enum(0x1F03)
	SHADING_LANGUAGE_VERSION = Enum(0x8B8C)

	MAJOR_VERSION                     = Enum(0x821B)
	MINOR_VERSION                     = Enum(0x821C)
	NUM_EXTENSIONS                    = Enum(0x821D)
	CONTEXT_FLAGS                     = Enum(0x821E)
	CONTEXT_FLAG_DEBUG_BIT            = 0x2
	CONTEXT_PROFILE_MASK              = Enum(0x9126)
	CONTEXT_CORE_PROFILE_BIT          = 0x1
	CONTEXT_COMPATIBILITY_PROFILE_BIT = 0x2
	MAX_COLOR_ATTACHMENTS             = Enum(0x8CDF)
	MAX_DRAW_BUFFERS                  = Enum(0x8824)
	MAX_TEXTURE_SIZE                  = Enum(0x0D33)
	MAX_VERTEX_ATTRIBS                = Enum(0x8869)
	MAX_COMBINED_TEXTURE_IMAGE_UNITS  = Enum(0x8B4D)

	ARRAY_BUFFER_BINDING         = Enum(0x8894)
	ELEMENT_ARRAY_BUFFER_BINDING = Enum(0x8895)
	CURRENT_PROGRAM              = Enum(0x8B8D)
	VERTEX_ARRAY_BINDING         = Enum(0x85B5)
	FRAMEBUFFER_BINDING          = Enum(0x8CA6)
	DRAW_FRAMEBUFFER_BINDING     = Enum(0x8CA6)
	READ_FRAMEBUFFER_BINDING     = Enum(0x8CAA)
	RENDERBUFFER_BINDING         = Enum(0x8CA7)
	TEXTURE_BINDING_2D           = Enum(0x8069)
	ACTIVE_TEXTURE               = Enum(0x84E0)

	BLEND                     = Enum(0x0BE2)
	CULL_FACE                 = Enum(0x0B44)
	DEPTH_TEST                = Enum(0x0B71)
	STENCIL_TEST              = Enum(0x0B90)
	SCISSOR_TEST              = Enum(0x0C11)
	LINE_SMOOTH               = Enum(0x0B20)
	MULTISAMPLE               = Enum(0x809D)
	POLYGON_OFFSET_FILL       = Enum(0x8037)
	PROGRAM_POINT_SIZE        = Enum(0x8642)
	PRIMITIVE_RESTART         = Enum(0x8F9D)
	FRAMEBUFFER_SRGB          = Enum(0x8DB9)
	RASTERIZER_DISCARD        = Enum(0x8C89)
	TEXTURE_CUBE_MAP_SEAMLESS = Enum(0x884F)
	DEBUG_OUTPUT              = Enum(0x92E0)
	DEBUG_OUTPUT_SYNCHRONOUS  = Enum(0x8242)

	FRONT          = Enum(0x0404)
	BACK           = Enum(0x0405)
	FRONT_AND_BACK = Enum(0x0408)
	FRONT_LEFT     = Enum(0x0400)
	BACK_LEFT      = Enum(0x0402)
	CW             = Enum(0x0900)
	CCW            = Enum(0x0901)

	ZERO                = Enum(0)
	ONE                 = Enum(1)
	SRC_COLOR           = Enum(0x0300)
	ONE_MINUS_SRC_COLOR = Enum(0x0301)
	SRC_ALPHA           = Enum(0x0302)
	ONE_MINUS_SRC_ALPHA = Enum(0x0303)
	DST_ALPHA           = Enum(0x0304)
	ONE_MINUS_DST_ALPHA = Enum(0x0305)
	DST_COLOR           = Enum(0x0306)
	ONE_MINUS_DST_COLOR = Enum(0x0307)

	NEVER    = Enum(0x0200)
	LESS     = Enum(0x0201)
	EQUAL    = Enum(0x0202)
	LEQUAL   = Enum(0x0203)
	GREATER  = Enum(0x0204)
	NOTEQUAL = Enum(0x0205)
	GEQUAL   = Enum(0x0206)
	ALWAYS   = Enum(0x0207)

	DEPTH_BUFFER_BIT   = Enum(0x00000100)
	STENCIL_BUFFER_BIT = Enum(0x00000400)
	COLOR_BUFFER_BIT   = Enum(0x00004000)

	POINTS         = Enum(0x0000)
	LINES          = Enum(0x0001)
	LINE_LOOP      = Enum(0x0002)
	LINE_STRIP     = Enum(0x0003)
	TRIANGLES      = Enum(0x0004)
	TRIANGLE_STRIP = Enum(0x0005)
	TRIANGLE_FAN   = Enum(0x0006)
	PATCHES        = Enum(0x000E)

	BYTE                           = Enum(0x1400)
	UNSIGNED_BYTE                  = Enum(0x1401)
	SHORT                          = Enum(0x1402)
	UNSIGNED_SHORT                 = Enum(0x1403)
	INT                            = Enum(0x1404)
	UNSIGNED_INT                   = Enum(0x1405)
	FLOAT                          = Enum(0x1406)
	DOUBLE                         = Enum(0x140A)
	HALF_FLOAT                     = Enum(0x140B)
	UNSIGNED_INT_24_8              = Enum(0x84FA)
	FLOAT_32_UNSIGNED_INT_24_8_REV = Enum(0x8DAD)

	UNSIGNED_BYTE_3_3_2          = Enum(0x8032)
	UNSIGNED_BYTE_2_3_3_REV      = Enum(0x8362)
	UNSIGNED_SHORT_5_6_5         = Enum(0x8363)
	UNSIGNED_SHORT_5_6_5_REV     = Enum(0x8364)
	UNSIGNED_SHORT_4_4_4_4       = Enum(0x8033)
	UNSIGNED_SHORT_4_4_4_4_REV   = Enum(0x8365)
	UNSIGNED_SHORT_5_5_5_1       = Enum(0x8034)
	UNSIGNED_SHORT_1_5_5_5_REV   = Enum(0x8366)
	UNSIGNED_INT_8_8_8_8         = Enum(0x8035)
	UNSIGNED_INT_8_8_8_8_REV     = Enum(0x8367)
	UNSIGNED_INT_10_10_10_2      = Enum(0x8036)
	UNSIGNED_INT_2_10_10_10_REV  = Enum(0x8368)
	UNSIGNED_INT_10F_11F_11F_REV = Enum(0x8C3B)
	UNSIGNED_INT_5_9_9_9_REV     = Enum(0x8C3E)

	ARRAY_BUFFER              = Enum(0x8892)
	ELEMENT_ARRAY_BUFFER      = Enum(0x8893)
	PIXEL_PACK_BUFFER         = Enum(0x88EB)
	PIXEL_UNPACK_BUFFER       = Enum(0x88EC)
	UNIFORM_BUFFER            = Enum(0x8A11)
	TEXTURE_BUFFER            = Enum(0x8C2A)
	TRANSFORM_FEEDBACK_BUFFER = Enum(0x8C8E)
	COPY_READ_BUFFER          = Enum(0x8F36)
	COPY_WRITE_BUFFER         = Enum(0x8F37)
	DRAW_INDIRECT_BUFFER      = Enum(0x8F3F)
	DISPATCH_INDIRECT_BUFFER  = Enum(0x90EE)
	SHADER_STORAGE_BUFFER     = Enum(0x90D2)
	ATOMIC_COUNTER_BUFFER     = Enum(0x92C0)

	STREAM_DRAW  = Enum(0x88E0)
	STREAM_READ  = Enum(0x88E1)
	STREAM_COPY  = Enum(0x88E2)
	STATIC_DRAW  = Enum(0x88E4)
	STATIC_READ  = Enum(0x88E5)
	STATIC_COPY  = Enum(0x88E6)
	DYNAMIC_DRAW = Enum(0x88E8)
	DYNAMIC_READ = Enum(0x88E9)
	DYNAMIC_COPY = Enum(0x88EA)

	BUFFER_SIZE   = Enum(0x8764)
	BUFFER_USAGE  = Enum(0x8765)
	BUFFER_MAPPED = Enum(0x88BC)

	FRAGMENT_SHADER        = Enum(0x8B30)
	VERTEX_SHADER          = Enum(0x8B31)
	GEOMETRY_SHADER        = Enum(0x8DD9)
	TESS_EVALUATION_SHADER = Enum(0x8E87)
	TESS_CONTROL_SHADER    = Enum(0x8E88)
	COMPUTE_SHADER         = Enum(0x91B9)

	SHADER_TYPE          = Enum(0x8B4F)
	DELETE_STATUS        = Enum(0x8B80)
	COMPILE_STATUS       = Enum(0x8B81)
	LINK_STATUS          = Enum(0x8B82)
	VALIDATE_STATUS      = Enum(0x8B83)
	INFO_LOG_LENGTH      = Enum(0x8B84)
	ATTACHED_SHADERS     = Enum(0x8B85)
	ACTIVE_UNIFORMS      = Enum(0x8B86)
	SHADER_SOURCE_LENGTH = Enum(0x8B88)
	ACTIVE_ATTRIBUTES    = Enum(0x8B89)
	INVALID_INDEX        = uint32(0xFFFFFFFF)

	FRAMEBUFFER      = Enum(0x8D40)
	READ_FRAMEBUFFER = Enum(0x8CA8)
	DRAW_FRAMEBUFFER = Enum(0x8CA9)
	RENDERBUFFER     = Enum(0x8D41)

	COLOR_ATTACHMENT0        = Enum(0x8CE0)
	COLOR_ATTACHMENT1        = Enum(0x8CE1)
	COLOR_ATTACHMENT2        = Enum(0x8CE2)
	COLOR_ATTACHMENT3        = Enum(0x8CE3)
	COLOR_ATTACHMENT4        = Enum(0x8CE4)
	COLOR_ATTACHMENT5        = Enum(0x8CE5)
	COLOR_ATTACHMENT6        = Enum(0x8CE6)
	COLOR_ATTACHMENT7        = Enum(0x8CE7)
	COLOR_ATTACHMENT15       = Enum(0x8CEF)
	DEPTH_ATTACHMENT         = Enum(0x8D00)
	STENCIL_ATTACHMENT       = Enum(0x8D20)
	DEPTH_STENCIL_ATTACHMENT = Enum(0x821A)

	FRAMEBUFFER_COMPLETE                      = Enum(0x8CD5)
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         = Enum(0x8CD6)
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT = Enum(0x8CD7)
	FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER        = Enum(0x8CDB)
	FRAMEBUFFER_INCOMPLETE_READ_BUFFER        = Enum(0x8CDC)
	FRAMEBUFFER_UNSUPPORTED                   = Enum(0x8CDD)
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE        = Enum(0x8D56)
	FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS      = Enum(0x8DA8)
	FRAMEBUFFER_UNDEFINED                     = Enum(0x8219)

	FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE   = Enum(0x8CD0)
	FRAMEBUFFER_ATTACHMENT_OBJECT_NAME   = Enum(0x8CD1)
	FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL = Enum(0x8CD2)
	FRAMEBUFFER_ATTACHMENT_TEXTURE_LAYER = Enum(0x8CD4)
	FRAMEBUFFER_DEFAULT_WIDTH            = Enum(0x9310)
	FRAMEBUFFER_DEFAULT_HEIGHT           = Enum(0x9311)

	COLOR         = Enum(0x1800)
	DEPTH         = Enum(0x1801)
	STENCIL       = Enum(0x1802)
	DEPTH_STENCIL = Enum(0x84F9)

	RENDERBUFFER_WIDTH           = Enum(0x8D42)
	RENDERBUFFER_HEIGHT          = Enum(0x8D43)
	RENDERBUFFER_INTERNAL_FORMAT = Enum(0x8D44)
	RENDERBUFFER_SAMPLES         = Enum(0x8CAB)

	TEXTURE                     = Enum(0x1702)
	TEXTURE_1D                  = Enum(0x0DE0)
	TEXTURE_2D                  = Enum(0x0DE1)
	TEXTURE_3D                  = Enum(0x806F)
	TEXTURE_1D_ARRAY            = Enum(0x8C18)
	TEXTURE_2D_ARRAY            = Enum(0x8C1A)
	TEXTURE_RECTANGLE           = Enum(0x84F5)
	TEXTURE_CUBE_MAP            = Enum(0x8513)
	TEXTURE_CUBE_MAP_POSITIVE_X = Enum(0x8515)
	TEXTURE_CUBE_MAP_NEGATIVE_X = Enum(0x8516)
	TEXTURE_CUBE_MAP_POSITIVE_Y = Enum(0x8517)
	TEXTURE_CUBE_MAP_NEGATIVE_Y = Enum(0x8518)
	TEXTURE_CUBE_MAP_POSITIVE_Z = Enum(0x8519)
	TEXTURE_CUBE_MAP_NEGATIVE_Z = Enum(0x851A)
	TEXTURE_2D_MULTISAMPLE      = Enum(0x9100)
	TEXTURE0                    = Enum(0x84C0)
	TEXTURE_BINDING_CUBE_MAP    = Enum(0x8514)

	TEXTURE_MAG_FILTER      = Enum(0x2800)
	TEXTURE_MIN_FILTER      = Enum(0x2801)
	TEXTURE_WRAP_S          = Enum(0x2802)
	TEXTURE_WRAP_T          = Enum(0x2803)
	TEXTURE_WRAP_R          = Enum(0x8072)
	TEXTURE_BASE_LEVEL      = Enum(0x813C)
	TEXTURE_MAX_LEVEL       = Enum(0x813D)
	TEXTURE_MAX_ANISOTROPY  = Enum(0x84FE)
	TEXTURE_COMPARE_MODE    = Enum(0x884C)
	TEXTURE_COMPARE_FUNC    = Enum(0x884D)
	TEXTURE_WIDTH           = Enum(0x1000)
	TEXTURE_HEIGHT          = Enum(0x1001)
	TEXTURE_INTERNAL_FORMAT = Enum(0x1003)
	TEXTURE_DEPTH           = Enum(0x8071)

	NEAREST                = Enum(0x2600)
	LINEAR                 = Enum(0x2601)
	NEAREST_MIPMAP_NEAREST = Enum(0x2700)
	LINEAR_MIPMAP_NEAREST  = Enum(0x2701)
	NEAREST_MIPMAP_LINEAR  = Enum(0x2702)
	LINEAR_MIPMAP_LINEAR   = Enum(0x2703)
	REPEAT                 = Enum(0x2901)
	CLAMP_TO_BORDER        = Enum(0x812D)
	CLAMP_TO_EDGE          = Enum(0x812F)
	MIRRORED_REPEAT        = Enum(0x8370)

	STENCIL_INDEX   = Enum(0x1901)
	DEPTH_COMPONENT = Enum(0x1902)
	RED             = Enum(0x1903)
	GREEN           = Enum(0x1904)
	BLUE            = Enum(0x1905)
	ALPHA           = Enum(0x1906)
	RGB             = Enum(0x1907)
	RGBA            = Enum(0x1908)
	RG              = Enum(0x8227)
	BGR             = Enum(0x80E0)
	BGRA            = Enum(0x80E1)

	RED_INTEGER   = Enum(0x8D94)
	GREEN_INTEGER = Enum(0x8D95)
	BLUE_INTEGER  = Enum(0x8D96)
	RG_INTEGER    = Enum(0x8228)
	RGB_INTEGER   = Enum(0x8D98)
	RGBA_INTEGER  = Enum(0x8D99)
	BGR_INTEGER   = Enum(0x8D9A)
	BGRA_INTEGER  = Enum(0x8D9B)

	R8                 = Enum(0x8229)
	RG8                = Enum(0x822B)
	RGB8               = Enum(0x8051)
	RGBA8              = Enum(0x8058)
	R32F               = Enum(0x822E)
	R32I               = Enum(0x8235)
	R32UI              = Enum(0x8236)
	RGB16F             = Enum(0x881B)
	RGBA16F            = Enum(0x881A)
	RGB32F             = Enum(0x8815)
	RGBA32F            = Enum(0x8814)
	SRGB8              = Enum(0x8C41)
	SRGB8_ALPHA8       = Enum(0x8C43)
	DEPTH_COMPONENT16  = Enum(0x81A5)
	DEPTH_COMPONENT24  = Enum(0x81A6)
	DEPTH_COMPONENT32  = Enum(0x81A7)
	DEPTH_COMPONENT32F = Enum(0x8CAC)
	DEPTH24_STENCIL8   = Enum(0x88F0)
	DEPTH32F_STENCIL8  = Enum(0x8CAD)

	UNPACK_ALIGNMENT = Enum(0x0CF5)
	PACK_ALIGNMENT   = Enum(0x0D05)

	DONT_CARE                        = Enum(0x1100)
	DEBUG_SOURCE_API                 = Enum(0x8246)
	DEBUG_SOURCE_WINDOW_SYSTEM       = Enum(0x8247)
	DEBUG_SOURCE_SHADER_COMPILER     = Enum(0x8248)
	DEBUG_SOURCE_THIRD_PARTY         = Enum(0x8249)
	DEBUG_SOURCE_APPLICATION         = Enum(0x824A)
	DEBUG_SOURCE_OTHER               = Enum(0x824B)
	DEBUG_TYPE_ERROR                 = Enum(0x824C)
	DEBUG_TYPE_DEPRECATED_BEHAVIOR   = Enum(0x824D)
	DEBUG_TYPE_UNDEFINED_BEHAVIOR    = Enum(0x824E)
	DEBUG_TYPE_PORTABILITY           = Enum(0x824F)
	DEBUG_TYPE_PERFORMANCE           = Enum(0x8250)
	DEBUG_TYPE_OTHER                 = Enum(0x8251)
	DEBUG_TYPE_MARKER                = Enum(0x8268)
	DEBUG_TYPE_PUSH_GROUP            = Enum(0x8269)
	DEBUG_TYPE_POP_GROUP             = Enum(0x826A)
	DEBUG_SEVERITY_NOTIFICATION      = Enum(0x826B)
	DEBUG_SEVERITY_HIGH              = Enum(0x9146)
	DEBUG_SEVERITY_MEDIUM            = Enum(0x9147)
	DEBUG_SEVERITY_LOW               = Enum(0x9148)
)
