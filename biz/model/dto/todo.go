package dto

type Todo struct {
	ID       uint   `json:"id"`
	Text     string `json:"text"`
	Complete bool   `json:"complete"`
}

type TodoIDReq struct {
	TodoID uint `path:"todo_id" validate:"required"`
}

type CreateTodoReq struct {
	Text string `json:"text" validate:"required,max=512"`
}

type ListTodoResp struct {
	Todos []Todo `json:"todos"`
}
