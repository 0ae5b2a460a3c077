package v1

import (
	"net/http"

	"github.com/costtrack/backend/internal/httputil"
	"github.com/costtrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the routes for users with the
// RouterGroup that is passed.
func (co *Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetUsers)
		r.POST("", co.CreateUser)
	}

	// User with ID
	{
		r.OPTIONS("/:id", co.OptionsUserDetail)
		r.GET("/:id", co.GetUser)
		r.PATCH("/:id", co.UpdateUser)
		r.DELETE("/:id", co.DeleteUser)
	}
}

// UserEditable represents all user settable parameters of a user.
type UserEditable struct {
	Name  string `json:"name" example:"Jane Doe"`
	Email string `json:"email" example:"jane@example.com"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the user"
// @Router			/v1/users/{id} [options]
func (co *Controller) OptionsUserDetail(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	_, err = co.users.Get(id)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create user
// @Description	Creates a new user
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		201		{object}	models.User
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users [post]
func (co *Controller) CreateUser(c *gin.Context) {
	var editable UserEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	user := models.User{
		Name:  editable.Name,
		Email: editable.Email,
	}

	err = co.users.Create(&user)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	c.JSON(http.StatusCreated, user)
}

// @Summary		List users
// @Description	Returns all registered users
// @Tags			Users
// @Produce		json
// @Success		200	{array}		models.User
// @Failure		500	{object}	httpError
// @Router			/v1/users [get]
func (co *Controller) GetUsers(c *gin.Context) {
	users, err := co.users.List()
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary		Get user
// @Description	Returns a specific user
// @Tags			Users
// @Produce		json
// @Success		200	{object}	models.User
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the user"
// @Router			/v1/users/{id} [get]
func (co *Controller) GetUser(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	user, err := co.users.Get(id)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary		Update user
// @Description	Updates an existing user. Only values to be updated need to be specified.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.User
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint			true	"ID of the user"
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users/{id} [patch]
func (co *Controller) UpdateUser(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	user, err := co.users.Get(id)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	var editable UserEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	err = co.users.Update(&user, models.User{
		Name:  editable.Name,
		Email: editable.Email,
	})
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary		Delete user
// @Description	Deletes a user. Their ledger entries are kept: the ledger is append-only and past months stay reportable.
// @Tags			Users
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the user"
// @Router			/v1/users/{id} [delete]
func (co *Controller) DeleteUser(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	user, err := co.users.Get(id)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	err = co.users.Delete(&user)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
