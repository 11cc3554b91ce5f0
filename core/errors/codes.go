package errors

// ErrCode 业务错误码类型
type ErrCode int

const (
	// 通用错误 1000-1999
	ErrInvalidParameter ErrCode = 1001 // 参数错误
	ErrInternalError    ErrCode = 1002 // 内部错误
	ErrNotFound         ErrCode = 1003 // 资源未找到
	ErrAlreadyExists    ErrCode = 1004 // 资源已存在

	// 输入校验相关 2000-2999
	ErrUnsupportedFormat ErrCode = 2001 // 文件格式不支持
	ErrUnsupportedTask   ErrCode = 2002 // 任务类型不支持
	ErrQueryTooShort     ErrCode = 2003 // 查询过短

	// 文档处理相关 3000-3999
	ErrDecodeFailed     ErrCode = 3001 // 文本解码失败
	ErrExtractionFailed ErrCode = 3002 // 文本提取失败
	ErrChunkingFailed   ErrCode = 3003 // 文本分块失败
	ErrFileReadFailed   ErrCode = 3004 // 文件读取失败

	// 外部服务相关 4000-4999
	ErrEmbeddingFailed  ErrCode = 4001 // Embedding调用失败
	ErrFileUploadFailed ErrCode = 4002 // 对象存储上传失败
	ErrGenerationFailed ErrCode = 4003 // 内容生成失败
	ErrOCRFailed        ErrCode = 4004 // OCR服务调用失败
	ErrFileDeleteFailed ErrCode = 4005 // 对象存储删除失败

	// 向量数据库相关 5000-5999
	ErrVectorStoreInit ErrCode = 5001 // 向量库初始化失败
	ErrVectorSearch    ErrCode = 5002 // 向量搜索失败
	ErrVectorInsert    ErrCode = 5003 // 向量插入失败
	ErrVectorDelete    ErrCode = 5004 // 向量删除失败

	// 数据库相关 6000-6999
	ErrDatabaseQuery  ErrCode = 6001 // 数据库查询失败
	ErrDatabaseInsert ErrCode = 6002 // 数据库插入失败
	ErrDatabaseUpdate ErrCode = 6003 // 数据库更新失败
	ErrDatabaseInit   ErrCode = 6004 // 数据库初始化失败
)

// HTTPStatusCode 返回错误码对应的HTTP状态码
// 用户输入类错误映射为4xx，其余一律500，内部细节不对外暴露
func (e ErrCode) HTTPStatusCode() int {
	switch e {
	case ErrInvalidParameter, ErrUnsupportedFormat, ErrUnsupportedTask, ErrQueryTooShort:
		return 400
	case ErrNotFound:
		return 404
	case ErrAlreadyExists:
		return 409
	default:
		return 500
	}
}
